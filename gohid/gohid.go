package gohid

// HIDDevice is the feature-report surface the relay protocol needs. It is
// satisfied by *hid.Device from sstallion/go-hid and by the raw hidraw
// backend in this package.
type HIDDevice interface {
	GetFeatureReport(b []byte) (int, error)
	SendFeatureReport(b []byte) (int, error)
	Close() error
}

func OpenHID(path string) (HIDDevice, error) {
	return openHIDInternal(path)
}
