// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfiguration(t *testing.T, dir string, text string) string {
	fileName := filepath.Join(dir, "nftokend.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "nftokend")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeConfiguration(t, dir, `
return {
    data_directory = ".",
    chain = "Testing",
    pidfile = "nftokend.pid",
    client_rpc = {
        maximum_connections = 5,
        listen = { "127.0.0.1:2130" },
    },
    rate_limit = {
        requests_per_second = 10,
        burst = 5,
    },
}
`)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration")

	// temp dir may be behind a symlink
	base, _ := filepath.Abs(dir)

	assert.Equal(t, "testing", options.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(base, "data"), options.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(base, "data", "testing.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(base, "nftokend.pid"), options.PidFile, "wrong pid file")
	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, filepath.Join(base, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(base, "rpc.key"), options.ClientRPC.PrivateKey, "wrong private key")
	assert.Equal(t, float64(10), options.RateLimit.RequestsPerSecond, "wrong rate")
	assert.Equal(t, 5, options.RateLimit.Burst, "wrong burst")
	assert.Equal(t, defaultLogFile, options.Logging.File, "wrong log file")

	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		info, err := os.Stat(d)
		assert.Nil(t, err, d)
		assert.True(t, info.IsDir(), d)
	}
}

func TestGetConfigurationWhenInvalid(t *testing.T) {
	dir, err := ioutil.TempDir("", "nftokend")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	items := []struct {
		name string
		text string
	}{
		{"unknown chain", `return { data_directory = ".", chain = "bitcoin" }`},
		{"no data directory", `return { chain = "local" }`},
		{"missing data directory", `return { data_directory = "/no/such/directory" }`},
		{"database path", `return { data_directory = ".", database = { name = "x/y.leveldb" } }`},
	}
	for _, item := range items {
		_, err := getConfiguration(writeConfiguration(t, dir, item.text))
		assert.NotNil(t, err, item.name)
	}
}
