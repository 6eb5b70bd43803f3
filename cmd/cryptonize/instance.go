package main

import (
	"fmt"
	"os"

	"github.com/cosmic-cipher/cryptocore/engine"
	"github.com/cosmic-cipher/cryptocore/primitive"
	"github.com/spf13/cobra"
)

var (
	instanceUserInput     string
	instanceUserPassword  string
	instanceOutputFile    string
	instanceImportInput   string
)

var generateInstanceCmd = &cobra.Command{
	Use:   "generate-instance",
	Short: "Mint a subordinate instance identity bound to an existing user's CA",
	Example: `  cryptonize generate-instance --user alice.blob --password hunter2 --output alice-device.blob`,
	RunE: runGenerateInstance,
}

var importInstanceCmd = &cobra.Command{
	Use:   "import-instance",
	Short: "Recover an instance identity from an exported blob",
	RunE:  runImportInstance,
}

func init() {
	rootCmd.AddCommand(generateInstanceCmd, importInstanceCmd)

	generateInstanceCmd.Flags().StringVar(&instanceUserInput, "user", "", "exported user blob owning the CA (required)")
	generateInstanceCmd.Flags().StringVar(&instanceUserPassword, "password", "", "password for the user blob (required)")
	generateInstanceCmd.Flags().StringVarP(&instanceOutputFile, "output", "o", "", "output file for the instance blob (required)")
	_ = generateInstanceCmd.MarkFlagRequired("user")
	_ = generateInstanceCmd.MarkFlagRequired("password")
	_ = generateInstanceCmd.MarkFlagRequired("output")

	importInstanceCmd.Flags().StringVarP(&instanceImportInput, "input", "i", "", "instance blob to import (required)")
	_ = importInstanceCmd.MarkFlagRequired("input")
}

func runGenerateInstance(cmd *cobra.Command, args []string) error {
	userData, err := os.ReadFile(instanceUserInput)
	if err != nil {
		return fmt.Errorf("read user blob: %w", err)
	}
	user, err := engine.ImportUser([]byte(instanceUserPassword), userData, primitive.DefaultArgon2Params())
	if err != nil {
		return fmt.Errorf("import user: %w", err)
	}

	blob, err := user.GenerateInstance()
	if err != nil {
		return fmt.Errorf("generate instance: %w", err)
	}

	if err := os.WriteFile(instanceOutputFile, blob, 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote instance identity to %s\n", instanceOutputFile)
	return nil
}

func runImportInstance(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(instanceImportInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	id, err := engine.ImportInstance(data)
	if err != nil {
		return fmt.Errorf("import instance: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported instance identity, verifying key: %x\n", id.Signing.PublicBytes())
	return nil
}
