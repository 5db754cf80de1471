// +build !purehidraw

package main

import (
	"fmt"

	"github.com/sstallion/go-hid"

	"github.com/jitech21/Very-Simple-USB-Relay/gohid"
	"github.com/jitech21/Very-Simple-USB-Relay/relay"
)

func hidInit() {
	hid.Init()
}

func hidExit() {
	hid.Exit()
}

func OpenRelay() (*relay.Relay, error) {
	if CLI.RawPath != "" {
		dev, err := gohid.OpenHID(CLI.RawPath)
		if err != nil {
			return nil, fmt.Errorf("Open %s: %w", CLI.RawPath, err)
		}
		return relay.New(dev), nil
	}

	return relay.Open(uint16(CLI.IDVendor), uint16(CLI.IDProduct))
}
