package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/inancgumus/screen"

	"github.com/jitech21/Very-Simple-USB-Relay/relay"
)

func stateText(on bool) string {
	if on {
		return color.New(color.FgGreen).Sprint("on")
	}
	return color.New(color.FgRed).Sprint("off")
}

func printStatus(rly *relay.Relay) error {
	if CLI.Port == relay.ChannelAll {
		states, err := rly.Channels()
		if err != nil {
			return err
		}
		for i, on := range states {
			fmt.Printf("channel %d: %s\n", i+1, stateText(on))
		}
		return nil
	}

	on, err := rly.Channel(CLI.Port)
	if err != nil {
		return err
	}
	fmt.Println(stateText(on))
	return nil
}

func watchStatus(rly *relay.Relay) error {
	for {
		startTime := time.Now()

		screen.Clear()
		screen.MoveTopLeft()
		if err := printStatus(rly); err != nil {
			return err
		}

		d := time.Now().Sub(startTime)
		if d < CLI.Watch {
			time.Sleep(CLI.Watch - d)
		}
	}
}
