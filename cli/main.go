package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/jitech21/Very-Simple-USB-Relay/relay"
)

var CLI struct {
	Port      int           `required help:"Relay channel to address: 1-8, or 0 for all channels."`
	Switch    string        `optional enum:"True,False," default:"" help:"Pass True to switch the channel on, False to switch it off. Omit to query only."`
	IDVendor  int           `optional name:"id-vendor" type:"hex" help:"The USB Vendor ID." default:"16c0"`
	IDProduct int           `optional name:"id-product" type:"hex" help:"The USB Product ID." default:"05df"`
	RawPath   string        `optional help:"Open this hidraw device node instead of searching by ID."`
	Watch     time.Duration `optional help:"Redraw the status at this interval until interrupted."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.Description("Switch and query channels on a driverless USB HID relay board."),
		kong.NamedMapper("hex", intMapper{base: 16}))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	_, err = k.Parse(os.Args[1:])
	k.FatalIfErrorf(err)

	// Bad channel indices are rejected before any device is touched.
	k.FatalIfErrorf(relay.CheckChannel(CLI.Port))

	k.FatalIfErrorf(run())
}

func run() error {
	hidInit()
	defer hidExit()

	rly, err := OpenRelay()
	if err != nil {
		return err
	}
	defer rly.Close()

	if CLI.Switch != "" {
		if err := rly.SetChannel(CLI.Port, CLI.Switch == "True"); err != nil {
			return err
		}
	}

	if CLI.Watch > 0 {
		return watchStatus(rly)
	}

	return printStatus(rly)
}
