package logging

import "errors"

// ErrBadEnvironment is returned by New when Config.Environment is
// neither "development" nor "production".
var ErrBadEnvironment = errors.New("[logging] environment must be either development or production")
