// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftokend/chain"
	"github.com/bitmark-inc/nftokend/counter"
	"github.com/bitmark-inc/nftokend/rpc/certificate"
	"github.com/bitmark-inc/nftokend/rpc/listeners"
	"github.com/bitmark-inc/nftokend/rpc/server"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "stats", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	testnet := chain.IsTestnet(theConfiguration.Chain)
	log.Infof("chain: %s  test mode: %v", theConfiguration.Chain, testnet)
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage and recover the chain
	log.Info("initialise chain state")
	state, err := openChainState(log, theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("chain state initialise error: %s", err)
		exitwithstatus.Message("chain state initialise error: %s", err)
	}
	defer state.close()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(arguments, state) {
		return
	}

	// start up the rpc background processes
	rpcCount := counter.Counter(0)
	rpcListener, err := startRPC(log, theConfiguration, state, &rpcCount, testnet)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpcListener.Stop()

	shutdown := make(chan struct{})
	defer close(shutdown)
	if len(options["stats"]) > 0 {
		go stats(state, &rpcCount, shutdown)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// load the certificate and start the JSON-RPC listeners
//
// the node has no wallet so NfToken.Register is unavailable
func startRPC(log *logger.L, options *Configuration, state *chainState, rpcCount *counter.Counter, testnet bool) (listeners.Listener, error) {
	rpcLog := logger.New("rpc")

	tlsConfiguration, _, err := certificate.Load(rpcLog, "client_rpc", options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
	if nil != err {
		return nil, err
	}

	rpcConfiguration := server.Configuration{
		Version:   version,
		Chain:     options.Chain,
		Testnet:   testnet,
		RateLimit: options.RateLimit,
		Registry:  state.registry,
		Blocks:    state.blocks,
	}
	rpcServer, err := server.Create(rpcLog, &rpcConfiguration, rpcCount)
	if nil != err {
		return nil, err
	}

	l, err := listeners.NewRPC(&options.ClientRPC, rpcLog, rpcCount, rpcServer, tlsConfiguration)
	if nil != err {
		return nil, err
	}
	if err := l.Serve(); nil != err {
		return nil, err
	}

	log.Infof("rpc listening on: %v", l.Addresses())
	return l, nil
}
