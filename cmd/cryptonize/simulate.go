package main

import (
	"fmt"

	"github.com/cosmic-cipher/cryptocore/engine"
	"github.com/cosmic-cipher/cryptocore/primitive"
	"github.com/cosmic-cipher/cryptocore/registry"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var simulateMessage string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a full two-party exchange in process: mint a user and an instance sharing its CA, run key exchange, and seal a message",
	Long: `simulate mints one user identity and one subordinate instance under the
same CA, registers both under generated labels, drives both halves of the
key exchange concurrently, and seals the message given by --message from the
user to the instance to demonstrate the complete round trip.`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVarP(&simulateMessage, "message", "m", "hello from cryptonize", "plaintext message to seal and open")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	reg := registry.New()

	user, err := engine.NewUser()
	if err != nil {
		return fmt.Errorf("mint user: %w", err)
	}
	instBlob, err := user.GenerateInstance()
	if err != nil {
		return fmt.Errorf("mint instance: %w", err)
	}
	inst, err := engine.ImportInstance(instBlob)
	if err != nil {
		return fmt.Errorf("import instance: %w", err)
	}

	userLabel := "user-" + uuid.NewString()
	instLabel := "instance-" + uuid.NewString()
	peerLabel := "peer"

	userEngine := engine.New(user, primitive.DefaultArgon2Params(), nil)
	instEngine := engine.New(inst, primitive.DefaultArgon2Params(), nil)
	if err := reg.Register(userLabel, userEngine); err != nil {
		return err
	}
	if err := reg.Register(instLabel, instEngine); err != nil {
		return err
	}

	var userPub, userSig, instPub, instSig []byte
	var userPacket, instPacket []byte

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		userPub, userSig, err = userEngine.InitKex(peerLabel)
		if err != nil {
			return fmt.Errorf("user init kex: %w", err)
		}
		userPacket, err = userEngine.PackKex(userPub, userSig)
		return err
	})
	g.Go(func() (err error) {
		instPub, instSig, err = instEngine.InitKex(peerLabel)
		if err != nil {
			return fmt.Errorf("instance init kex: %w", err)
		}
		instPacket, err = instEngine.PackKex(instPub, instSig)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	var userSecret, instSecret []byte
	g = new(errgroup.Group)
	g.Go(func() error {
		ephPub, ephSig, vk, cert, err := engine.UnpackKex(instPacket)
		if err != nil {
			return err
		}
		userSecret, err = userEngine.CompleteKex(peerLabel, ephPub, ephSig, vk, cert)
		return err
	})
	g.Go(func() error {
		ephPub, ephSig, vk, cert, err := engine.UnpackKex(userPacket)
		if err != nil {
			return err
		}
		instSecret, err = instEngine.CompleteKex(peerLabel, ephPub, ephSig, vk, cert)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("complete kex: %w", err)
	}
	if string(userSecret) != string(instSecret) {
		return fmt.Errorf("shared secrets diverged")
	}
	fmt.Fprintln(out, "key exchange complete, shared secret established")

	frame, err := userEngine.Seal(peerLabel, []byte(simulateMessage))
	if err != nil {
		return fmt.Errorf("seal message: %w", err)
	}
	plaintext, err := instEngine.Open(peerLabel, frame)
	if err != nil {
		return fmt.Errorf("open message: %w", err)
	}
	fmt.Fprintf(out, "instance recovered message: %q\n", plaintext)
	return nil
}
