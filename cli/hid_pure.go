// +build purehidraw

package main

import (
	"errors"
	"fmt"

	"github.com/jitech21/Very-Simple-USB-Relay/gohid"
	"github.com/jitech21/Very-Simple-USB-Relay/relay"
)

func hidInit() {}

func hidExit() {}

func OpenRelay() (*relay.Relay, error) {
	if CLI.RawPath == "" {
		return nil, errors.New("RawPath must be specified when building without hidapi")
	}

	dev, err := gohid.OpenHID(CLI.RawPath)
	if err != nil {
		return nil, fmt.Errorf("Open %s: %w", CLI.RawPath, err)
	}

	return relay.New(dev), nil
}
