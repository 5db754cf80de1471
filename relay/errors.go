package relay

import "errors"

var (
	ErrorDeviceNotFound = errors.New("No matching relay device found")
	ErrorDeviceClosed   = errors.New("The relay session is closed")
	ErrorInvalidChannel = errors.New("Relay channel must be in range 0-8")
	ErrorBadReport      = errors.New("Received malformed status report")
)
