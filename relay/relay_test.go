package relay_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jitech21/Very-Simple-USB-Relay/relay"
)

// fakeDevice is an in-memory HIDDevice that records feature report traffic
// and serves a scripted status report.
type fakeDevice struct {
	report   []byte
	shortBy  int
	failWith error

	sent     [][]byte
	getCalls int
	reportID byte
	getLen   int
	closed   bool
}

func (f *fakeDevice) GetFeatureReport(b []byte) (int, error) {
	f.getCalls++
	f.reportID = b[0]
	f.getLen = len(b)
	if f.failWith != nil {
		return 0, f.failWith
	}
	n := copy(b, f.report)
	return n - f.shortBy, nil
}

func (f *fakeDevice) SendFeatureReport(b []byte) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.sent = append(f.sent, append([]byte(nil), b...))
	return len(b), nil
}

func (f *fakeDevice) Close() error {
	f.closed = true
	return nil
}

func statusReport(mask byte) []byte {
	return []byte{76, 72, 67, 88, 73, 0, 0, mask}
}

func TestChannelsMatchSingleChannelReads(t *testing.T) {
	dev := &fakeDevice{report: statusReport(0xA5)}
	rly := relay.New(dev)

	states, err := rly.Channels()
	require.NoError(t, err)

	for c := 1; c <= relay.NumChannels; c++ {
		on, err := rly.Channel(c)
		require.NoError(t, err)
		assert.Equal(t, states[c-1], on, "channel %d", c)
	}
}

func TestStatusReportRequest(t *testing.T) {
	dev := &fakeDevice{report: statusReport(0)}
	rly := relay.New(dev)

	_, err := rly.Channels()
	require.NoError(t, err)

	assert.Equal(t, byte(1), dev.reportID)
	assert.Equal(t, relay.ReportLength, dev.getLen)
}

func TestSetChannelSendsCommand(t *testing.T) {
	dev := &fakeDevice{report: statusReport(0)}
	rly := relay.New(dev)

	require.NoError(t, rly.SetChannel(3, true))
	require.NoError(t, rly.SetChannel(relay.ChannelAll, false))

	assert.Equal(t, [][]byte{{0xFF, 3}, {0xFC}}, dev.sent)
	assert.Zero(t, dev.getCalls, "a write must not trigger a read by itself")
}

func TestInvalidChannelIssuesNoIO(t *testing.T) {
	dev := &fakeDevice{report: statusReport(0)}
	rly := relay.New(dev)

	err := rly.SetChannel(9, true)
	assert.ErrorIs(t, err, relay.ErrorInvalidChannel)

	_, err = rly.Channel(0)
	assert.ErrorIs(t, err, relay.ErrorInvalidChannel)

	_, err = rly.Channel(9)
	assert.ErrorIs(t, err, relay.ErrorInvalidChannel)

	assert.Empty(t, dev.sent)
	assert.Zero(t, dev.getCalls)
}

func TestCloseIsIdempotent(t *testing.T) {
	dev := &fakeDevice{report: statusReport(0)}
	rly := relay.New(dev)

	require.NoError(t, rly.Close())
	assert.True(t, dev.closed)
	require.NoError(t, rly.Close())
}

func TestOperationsAfterClose(t *testing.T) {
	dev := &fakeDevice{report: statusReport(0)}
	rly := relay.New(dev)
	require.NoError(t, rly.Close())

	_, err := rly.Channels()
	assert.ErrorIs(t, err, relay.ErrorDeviceClosed)

	_, err = rly.Channel(1)
	assert.ErrorIs(t, err, relay.ErrorDeviceClosed)

	err = rly.SetChannel(1, true)
	assert.ErrorIs(t, err, relay.ErrorDeviceClosed)
}

func TestShortReport(t *testing.T) {
	dev := &fakeDevice{report: statusReport(0), shortBy: 3}
	rly := relay.New(dev)

	_, err := rly.Channels()
	assert.ErrorIs(t, err, relay.ErrorBadReport)
}

func TestTransportErrorPropagates(t *testing.T) {
	boom := errors.New("device unplugged")
	dev := &fakeDevice{report: statusReport(0), failWith: boom}
	rly := relay.New(dev)

	_, err := rly.Channels()
	assert.ErrorIs(t, err, boom)

	err = rly.SetChannel(1, true)
	assert.ErrorIs(t, err, boom)
}
