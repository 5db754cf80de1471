package relay

// NumChannels is the number of relay channels described by one status report.
const NumChannels = 8

// ChannelAll addresses every channel at once in SetChannel and EncodeWrite.
const ChannelAll = 0

// ReportLength is the size of the status feature report in bytes.
const ReportLength = 8

/* Command bytes understood by the relay firmware. The board never answers
   a write, state is read back with a separate status report. */
const (
	cmdAllOn      = 0xFE
	cmdAllOff     = 0xFC
	cmdChannelOn  = 0xFF
	cmdChannelOff = 0xFD
)

// CheckChannel rejects channel indices the protocol cannot address.
func CheckChannel(channel int) error {
	if channel < 0 || channel > NumChannels {
		return ErrorInvalidChannel
	}
	return nil
}

// EncodeWrite builds the feature report payload that switches the given
// channel. ChannelAll encodes as a single command byte, channels 1-8 carry
// the channel number after the command byte.
func EncodeWrite(channel int, on bool) ([]byte, error) {
	if err := CheckChannel(channel); err != nil {
		return nil, err
	}

	if channel == ChannelAll {
		if on {
			return []byte{cmdAllOn}, nil
		}
		return []byte{cmdAllOff}, nil
	}

	if on {
		return []byte{cmdChannelOn, byte(channel)}, nil
	}
	return []byte{cmdChannelOff, byte(channel)}, nil
}

// DecodeReport unpacks a status feature report. Byte 7 holds one bit per
// channel, least significant bit first, so bit 0 is channel 1. A report
// value of 2 therefore means channel 2 is on and everything else is off.
func DecodeReport(report []byte) ([NumChannels]bool, error) {
	var states [NumChannels]bool

	if len(report) != ReportLength {
		return states, ErrorBadReport
	}

	mask := report[ReportLength-1]
	for i := range states {
		states[i] = mask&(1<<uint(i)) != 0
	}

	return states, nil
}
