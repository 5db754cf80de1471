// +build !linux

package gohid

import "errors"

func openHIDInternal(path string) (HIDDevice, error) {
	return nil, errors.New("Raw hidraw access is only supported on Linux")
}
