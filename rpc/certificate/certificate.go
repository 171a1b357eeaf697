// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/util"
)

// lifetime of a generated certificate
const validity = 10 * 365 * 24 * time.Hour

// Load - read a key pair from disk and return its TLS configuration
// and SHA3-256 fingerprint
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	var fingerprint [32]byte

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fingerprint, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
	fingerprint = sha3.Sum256(keyPair.Certificate[0])
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fingerprint)

	return tlsConfiguration, fingerprint, nil
}

// Generate - create a self-signed key pair, never overwriting existing files
func Generate(name string, certificateFileName string, keyFileName string, extraHosts []string) error {
	if util.EnsureFileExists(certificateFileName) || util.EnsureFileExists(keyFileName) {
		return fault.ErrCertificateFileExists
	}

	organisation := "nftokend self signed cert for: " + name
	cert, key, err := certgen.NewTLSCertPair(organisation, time.Now().Add(validity), false, extraHosts)
	if nil != err {
		return err
	}

	if err := ioutil.WriteFile(certificateFileName, cert, 0o666); nil != err {
		return err
	}
	if err := ioutil.WriteFile(keyFileName, key, 0o600); nil != err {
		_ = os.Remove(certificateFileName)
		return err
	}
	return nil
}
