package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/brave-intl/airdrop-go/libs/closers"
	cmdutils "github.com/brave-intl/airdrop-go/libs/cmd"
	appctx "github.com/brave-intl/airdrop-go/libs/context"
	"github.com/brave-intl/airdrop-go/tools/distribution"
	"github.com/spf13/cobra"
)

// TreeCmd groups the distribution tree utilities
var TreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "distribution merkle tree utilities",
}

// TreeBuildCmd builds the merkle tree for a distribution report
var TreeBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "build the merkle tree and proofs for a distribution report",
	Run:   cmdutils.Perform("build distribution tree", treeBuildRun),
}

// TreeVerifyCmd checks one entry of a built tree against its root
var TreeVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "verify one claimee's proof in a built distribution tree",
	Run:   cmdutils.Perform("verify distribution entry", treeVerifyRun),
}

func init() {
	// add build and verify subcommands
	TreeCmd.AddCommand(TreeBuildCmd)
	TreeCmd.AddCommand(TreeVerifyCmd)

	cmdutils.RootCmd.AddCommand(TreeCmd)

	buildBuilder := cmdutils.NewFlagBuilder(TreeBuildCmd)

	buildBuilder.Flag().String("report", "",
		"path to the distribution report csv").
		Bind("report").
		Require()

	buildBuilder.Flag().String("out", "",
		"path to write the built tree json, defaults to stdout").
		Bind("out")

	verifyBuilder := cmdutils.NewFlagBuilder(TreeVerifyCmd)

	verifyBuilder.Flag().String("tree", "",
		"path to the built tree json").
		Bind("tree").
		Require()

	verifyBuilder.Flag().String("claimee", "",
		"address of the claimee entry to verify").
		Bind("claimee").
		Require()
}

// treeBuildRun - main entrypoint for the `tree build` subcommand
func treeBuildRun(command *cobra.Command, args []string) error {
	ctx := command.Context()
	logger, err := appctx.GetLogger(ctx)
	if err != nil {
		return err
	}

	reportPath, err := command.Flags().GetString("report")
	if err != nil {
		return err
	}
	outPath, err := command.Flags().GetString("out")
	if err != nil {
		return err
	}

	f, err := os.Open(reportPath)
	if err != nil {
		return fmt.Errorf("failed to open distribution report: %w", err)
	}
	defer closers.Panic(ctx, f)

	rows, err := distribution.ReadRows(f)
	if err != nil {
		return fmt.Errorf("failed to read distribution report: %w", err)
	}

	report, err := distribution.Build(rows)
	if err != nil {
		return fmt.Errorf("failed to build distribution tree: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Fprintf(os.Stdout, "%s\n", out)
	} else {
		if err := ioutil.WriteFile(outPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write distribution tree: %w", err)
		}
	}

	logger.Info().
		Str("merkleRoot", report.MerkleRoot).
		Int("entries", len(report.Entries)).
		Msg("built distribution tree")
	return nil
}

// treeVerifyRun - main entrypoint for the `tree verify` subcommand
func treeVerifyRun(command *cobra.Command, args []string) error {
	ctx := command.Context()
	logger, err := appctx.GetLogger(ctx)
	if err != nil {
		return err
	}

	treePath, err := command.Flags().GetString("tree")
	if err != nil {
		return err
	}
	claimee, err := command.Flags().GetString("claimee")
	if err != nil {
		return err
	}

	data, err := ioutil.ReadFile(treePath)
	if err != nil {
		return fmt.Errorf("failed to read distribution tree: %w", err)
	}

	var report distribution.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("failed to parse distribution tree: %w", err)
	}

	if err := distribution.VerifyEntry(&report, claimee); err != nil {
		return err
	}

	logger.Info().
		Str("merkleRoot", report.MerkleRoot).
		Str("claimee", claimee).
		Msg("distribution entry verified")
	return nil
}
