package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eth2030/blobkzg/guest"
	"github.com/eth2030/blobkzg/kzg"
)

func (c *cli) commit(args []string) error {
	if len(args) != 1 {
		return usageErr("commit <blob-file>")
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	comm, err := c.backend.BlobToCommitment(blob)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, comm)
	return nil
}

func (c *cli) prove(args []string) error {
	if len(args) != 1 && len(args) != 2 {
		return usageErr("prove <blob-file> [commitment]")
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var comm kzg.Commitment
	if len(args) == 2 {
		if comm, err = parseCommitment(args[1]); err != nil {
			return err
		}
	} else if comm, err = c.backend.BlobToCommitment(blob); err != nil {
		return err
	}
	proof, err := c.backend.BlobToProof(blob, comm)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, proof)
	return nil
}

func (c *cli) verify(args []string) error {
	if len(args) != 3 {
		return usageErr("verify <blob-file> <commitment> <proof>")
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	comm, err := parseCommitment(args[1])
	if err != nil {
		return err
	}
	raw, err := hexutil.Decode(args[2])
	if err != nil {
		return fmt.Errorf("proof: %w", err)
	}
	proof, err := kzg.ProofFromBytes(raw)
	if err != nil {
		return err
	}
	if err := c.backend.VerifyBlobKZGProof(blob, comm, proof); err != nil {
		fmt.Fprintln(c.out, "invalid")
		return err
	}
	fmt.Fprintln(c.out, "valid")
	return nil
}

func (c *cli) hash(args []string) error {
	if len(args) != 1 {
		return usageErr("hash <commitment>")
	}
	comm, err := parseCommitment(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, kzg.CommitmentToVersionedHash(comm))
	return nil
}

func (c *cli) pack(args []string) error {
	if len(args) != 2 {
		return usageErr("pack <data-file> <blob-file>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	blob, err := kzg.EncodeData(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], blob, 0o644); err != nil {
		return err
	}
	c.logger.Info("blob written", "path", args[1], "payload", len(data))
	return nil
}

// runGuest plays both sides: the host prepares the input, the guest verifies it
// and the journal is printed.
func (c *cli) runGuest(args []string) error {
	if len(args) != 1 {
		return usageErr("guest <blob-file>")
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	in, err := guest.PrepareBlob(c.backend, blob)
	if err != nil {
		return err
	}
	env := guest.NewMemoryEnv()
	if err := guest.WriteInput(env, in); err != nil {
		return err
	}
	j, err := guest.Run(env, c.backend)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "verdict=%t digest=%s\n", j.Verdict, j.InputDigest.Hex())
	if !j.Verdict {
		return fmt.Errorf("guest rejected input %s", j.InputDigest.Hex())
	}
	return nil
}

func parseCommitment(s string) (kzg.Commitment, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return kzg.Commitment{}, fmt.Errorf("commitment: %w", err)
	}
	return kzg.CommitmentFromBytes(raw)
}
