// main.go - Demo entrypoint: build, compile, prove, and verify one UTXO
// transaction end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"

	"github.com/veridpc/utxocircuit/internal/dpc/buildtrace"
	"github.com/veridpc/utxocircuit/internal/dpc/circuit"
)

func main() {
	configPath := flag.String("config", "utxobuild.json", "path to the build config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	trace := buildtrace.New(log)

	// The bundled demo transaction always has the shape of the happy-path
	// scenario: one fee input, one real non-fee input, one dummy input
	// (two non-fee slots), matching Non-fee input size below regardless
	// of what the config file says.
	const demoNonFeeInputSize = 2
	cfg.NonFeeInputSize = demoNonFeeInputSize

	w, pub, err := happyPathTransaction()
	if err != nil {
		log.Fatal().Err(err).Msg("build sample transaction")
	}

	assigned, err := circuit.Build(w, pub)
	if err != nil {
		log.Fatal().Err(err).Msg("build witness circuit")
	}

	var compiled constraint.ConstraintSystem
	if err := trace.Track(buildtrace.StageCompile, func() error {
		var compileErr error
		compiled, compileErr = circuit.Compile(cfg.NonFeeInputSize)
		return compileErr
	}); err != nil {
		log.Fatal().Err(err).Msg("compile circuit")
	}

	var pk groth16.ProvingKey
	var vk groth16.VerifyingKey
	if err := trace.Track(buildtrace.StageSetup, func() error {
		var setupErr error
		pk, vk, setupErr = groth16.Setup(compiled)
		return setupErr
	}); err != nil {
		log.Fatal().Err(err).Msg("groth16 setup")
	}

	fullWitness, err := frontend.NewWitness(assigned, ecc.BW6_761.ScalarField())
	if err != nil {
		log.Fatal().Err(err).Msg("build full witness")
	}
	publicWitness, err := fullWitness.Public()
	if err != nil {
		log.Fatal().Err(err).Msg("build public witness")
	}

	var proof groth16.Proof
	if err := trace.Track(buildtrace.StageProve, func() error {
		var proveErr error
		proof, proveErr = groth16.Prove(compiled, pk, fullWitness)
		return proveErr
	}); err != nil {
		log.Fatal().Err(err).Msg("groth16 prove")
	}

	if err := trace.Track(buildtrace.StageVerify, func() error {
		return groth16.Verify(proof, vk, publicWitness)
	}); err != nil {
		log.Fatal().Err(err).Msg("groth16 verify")
	}

	log.Info().
		Dur("compile", trace.Total(buildtrace.StageCompile)).
		Dur("setup", trace.Total(buildtrace.StageSetup)).
		Dur("prove", trace.Total(buildtrace.StageProve)).
		Dur("verify", trace.Total(buildtrace.StageVerify)).
		Msg("transaction proved and verified")
}
