package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chronicle-sys/chronicle-go/cli"
)

var proveMembershipCmd = cli.NewActionCommand("prove-membership <ordinal>",
	"Print a membership proof for the entry at ordinal.",
	`Print a JSON membership proof for the entry written at ordinal,
along with the leaf digest it must be checked against. A caller that
doesn't trust this process verifies the proof with verify-membership
against a root digest it trusts independently.`,
	runProveMembership, nil)

type membershipProofOutput struct {
	Index      uint64   `json:"index"`
	Hashes     []string `json:"hashes"`
	LeafDigest string   `json:"leaf_digest"`
	RootDigest string   `json:"root_digest"`
}

func runProveMembership(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("prove-membership requires exactly 1 argument: <ordinal>")
	}
	ordinal, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad ordinal: %v", err)
	}
	conf := loadConfigOrExit(cmd)
	s, db, err := openStore(conf)
	if err != nil {
		return err
	}
	defer db.Close()

	kvs, err := s.Load()
	if err != nil {
		return err
	}
	proof, leafDigest, err := kvs.ProveMembership(ordinal)
	if err != nil {
		return err
	}
	out := membershipProofOutput{
		Index:      proof.Index,
		LeafDigest: leafDigest.String(),
		RootDigest: kvs.Tree().RootDigest().String(),
	}
	for _, h := range proof.Hashes {
		out.Hashes = append(out.Hashes, h.String())
	}
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(enc))
	return nil
}
