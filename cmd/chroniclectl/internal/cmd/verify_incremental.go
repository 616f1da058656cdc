package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronicle-sys/chronicle-go/cli"
	"github.com/chronicle-sys/chronicle-go/merkletree"
)

var verifyIncrementalCmd = cli.NewActionCommand("verify-incremental <proof.json>",
	"Check an incremental proof's ci and cj are consistent with the skeleton it carries.",
	`Read a JSON incremental proof written by prove-incremental and check
that its skeleton really does recompute to its cj field, and that its
ci field really is the root the store held back when it had i+1
entries. Unlike verify-membership, this command trusts the ci and cj
values embedded in the proof file rather than taking them as separate
trusted input, since an incremental proof's whole point is to link two
roots together, not to authenticate either one on its own.`,
	runVerifyIncremental, nil)

func runVerifyIncremental(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("verify-incremental requires exactly 1 argument: <proof.json>")
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var in incrementalProofOutput
	if err := json.Unmarshal(blob, &in); err != nil {
		return err
	}
	root, err := decodeSkeleton(in.Root)
	if err != nil {
		return fmt.Errorf("bad skeleton in proof: %v", err)
	}
	ci, err := merkletree.DigestFromHex(in.Ci)
	if err != nil {
		return fmt.Errorf("bad ci in proof: %v", err)
	}
	cj, err := merkletree.DigestFromHex(in.Cj)
	if err != nil {
		return fmt.Errorf("bad cj in proof: %v", err)
	}
	proof := &merkletree.IncrementalProof{Root: root}
	if merkletree.VerifyIncremental(proof, in.I, in.J, ci, cj) {
		fmt.Println("OK")
		return nil
	}
	fmt.Println("FAIL")
	os.Exit(1)
	return nil
}
