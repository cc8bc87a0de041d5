package mavlink

import (
	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/samber/oops"
)

// MessageID identifies the MAVLink messages the settings layer cares about.
type MessageID int

const (
	MessageHeartbeat        MessageID = 0
	MessageAutopilotVersion MessageID = 148
)

var messageNames = map[MessageID]string{
	MessageHeartbeat:        "HEARTBEAT",
	MessageAutopilotVersion: "AUTOPILOT_VERSION",
}

// MessageIDFromValue maps a MAVLink message id.
func MessageIDFromValue(value int) (MessageID, error) {
	id := MessageID(value)
	if _, ok := messageNames[id]; !ok {
		return 0, oops.
			In("mavlink").
			With("value", value).
			Wrapf(kerrors.ErrUnknownMessageID, "no message for id %d", value)
	}
	return id, nil
}

func (id MessageID) String() string {
	if name, ok := messageNames[id]; ok {
		return name
	}
	return "UNKNOWN"
}
