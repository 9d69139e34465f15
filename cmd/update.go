package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmejia/credeval/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update credeval to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("version")
		checkOnly, _ := cmd.Flags().GetBool("check")

		checker := selfupdate.NewChecker()
		out := cmd.OutOrStdout()

		if checkOnly {
			result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
			if err != nil {
				return err
			}
			if !result.UpdateAvailable {
				fmt.Fprintln(out, "credeval is up to date.")
				return nil
			}
			fmt.Fprintf(out, "Update available: %s (%s)\n", result.LatestVersion, result.ReleaseURL)
			return nil
		}

		err := checker.Update(cmd.Context(), &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Fprintln(out, p.Message)
		})
		switch {
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintln(out, "credeval is up to date.")
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			return fmt.Errorf("development builds cannot self-update; install a released binary")
		}
		return err
	},
}

func init() {
	updateCmd.Flags().String("version", "", "Update to a specific release tag instead of the latest")
	updateCmd.Flags().Bool("check", false, "Only check whether an update is available")
	rootCmd.AddCommand(updateCmd)
}
