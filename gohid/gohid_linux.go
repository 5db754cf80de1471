// +build linux

package gohid

import (
	"errors"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

/*
 The hidraw feature report ioctls encode the buffer length in the request
 number:
   HIDIOCSFEATURE(len) = 0xC0004806 | len<<16
   HIDIOCGFEATURE(len) = 0xC0004807 | len<<16
*/
const (
	hidIOCSFeature = 0xC0004806
	hidIOCGFeature = 0xC0004807
)

// Relay reports are a report id plus at most 8 payload bytes. The backend
// still allows a little headroom for other simple HID devices.
const maxReportLen = 64

var ErrorTooLong = errors.New("Transfer is too long")

type hidRaw struct {
	dev *os.File
}

func openHIDInternal(path string) (HIDDevice, error) {
	dev, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	return &hidRaw{
		dev: dev,
	}, nil
}

func (h *hidRaw) featureIoctl(req uint32, buf *[maxReportLen]byte, n int) error {
	_, _, errno := unix.Syscall(
		syscall.SYS_IOCTL,
		uintptr(h.dev.Fd()),
		uintptr(req|uint32(n)<<16),
		uintptr(unsafe.Pointer(buf)),
	)

	runtime.KeepAlive(buf)

	if errno != 0 {
		return os.NewSyscallError("ioctl", errno)
	}

	return nil
}

func (h *hidRaw) SendFeatureReport(b []byte) (int, error) {
	var tmp [maxReportLen]byte

	if len(b) > len(tmp) {
		return 0, ErrorTooLong
	}

	copy(tmp[:], b)

	if err := h.featureIoctl(hidIOCSFeature, &tmp, len(b)); err != nil {
		return 0, err
	}

	return len(b), nil
}

func (h *hidRaw) GetFeatureReport(b []byte) (int, error) {
	var tmp [maxReportLen]byte

	if len(b) > len(tmp) {
		return 0, ErrorTooLong
	}

	/* The report id to fetch is passed in the first byte of the buffer. */
	copy(tmp[:], b)

	if err := h.featureIoctl(hidIOCGFeature, &tmp, len(b)); err != nil {
		return 0, err
	}

	copy(b, tmp[:])

	return len(b), nil
}

func (h *hidRaw) Close() error {
	return h.dev.Close()
}
