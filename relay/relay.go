package relay

import (
	"errors"
	"fmt"

	"github.com/sstallion/go-hid"

	"github.com/jitech21/Very-Simple-USB-Relay/gohid"
)

// Default USB identifiers of the driverless V-USB relay boards.
const (
	DefaultVendorID  = 0x16c0
	DefaultProductID = 0x05df
)

const statusReportID = 1

// Relay is a session on one relay board. The board is the only state
// holder: every query issues a fresh status report read, so results are
// read-after-write consistent with the device itself.
type Relay struct {
	dev gohid.HIDDevice
}

// New wraps an already opened HID handle.
func New(dev gohid.HIDDevice) *Relay {
	return &Relay{dev: dev}
}

var errFound = errors.New("Done")

// Open locates the first HID device matching the given identifiers and
// opens it in non-blocking mode. ErrorDeviceNotFound is returned when
// nothing matches; OS-level refusals (permissions, busy device) propagate
// wrapped with the identifiers that were tried.
func Open(vid uint16, pid uint16) (*Relay, error) {
	var dev *hid.Device
	err := hid.Enumerate(vid, pid, func(info *hid.DeviceInfo) error {
		d, err := hid.Open(info.VendorID, info.ProductID, info.SerialNbr)
		if err == nil {
			dev = d
			return errFound
		}
		return err
	})

	if dev == nil {
		if err == nil {
			err = ErrorDeviceNotFound
		}
		return nil, fmt.Errorf("Open relay %04x:%04x: %w", vid, pid, err)
	}

	if err := dev.SetNonblocking(true); err != nil {
		dev.Close()
		return nil, fmt.Errorf("Open relay %04x:%04x: %w", vid, pid, err)
	}

	return New(dev), nil
}

// SetChannel switches one channel (or all of them, with ChannelAll) on or
// off. The board does not acknowledge writes; read the state back to
// verify the result.
func (r *Relay) SetChannel(channel int, on bool) error {
	cmd, err := EncodeWrite(channel, on)
	if err != nil {
		return err
	}

	if r.dev == nil {
		return ErrorDeviceClosed
	}

	if _, err := r.dev.SendFeatureReport(cmd); err != nil {
		return fmt.Errorf("Switch channel %d: %w", channel, err)
	}
	return nil
}

// Channels reads the state of all channels. Channel n is element n-1.
func (r *Relay) Channels() ([NumChannels]bool, error) {
	return r.readStates()
}

// Channel reads the state of a single channel in 1..NumChannels.
func (r *Relay) Channel(channel int) (bool, error) {
	if channel < 1 || channel > NumChannels {
		return false, ErrorInvalidChannel
	}

	states, err := r.readStates()
	if err != nil {
		return false, err
	}
	return states[channel-1], nil
}

func (r *Relay) readStates() ([NumChannels]bool, error) {
	var states [NumChannels]bool

	if r.dev == nil {
		return states, ErrorDeviceClosed
	}

	buf := make([]byte, ReportLength)
	buf[0] = statusReportID
	n, err := r.dev.GetFeatureReport(buf)
	if err != nil {
		return states, fmt.Errorf("Read status report: %w", err)
	}

	return DecodeReport(buf[:n])
}

// Close releases the device handle. It is safe to call more than once;
// operations after Close fail with ErrorDeviceClosed.
func (r *Relay) Close() error {
	if r.dev == nil {
		return nil
	}

	err := r.dev.Close()
	r.dev = nil
	return err
}
