package connection

import "time"

// ProbeDelay is how long the link may be idle before a probe is due:
// ceil(0.7 × keepAlive), in whole seconds. It returns 0 if keepAlive <= 0.
func ProbeDelay(keepAlive time.Duration) time.Duration {
	return scaledSeconds(keepAlive, 7)
}

// InactivityTimeout is how long without inbound traffic before the
// connection is considered lost: ceil(1.1 × keepAlive), in whole seconds.
// It returns 0 if keepAlive <= 0.
func InactivityTimeout(keepAlive time.Duration) time.Duration {
	return scaledSeconds(keepAlive, 11)
}

// scaledSeconds returns ceil(tenths/10 × ceil(d in seconds)) seconds using
// integer arithmetic only.
func scaledSeconds(d time.Duration, tenths int64) time.Duration {
	if d <= 0 {
		return 0
	}
	secs := int64((d + time.Second - 1) / time.Second)
	return time.Duration((tenths*secs+9)/10) * time.Second
}

// probeOutstanding reports whether a probe was sent and not yet answered.
func (m *Manager) probeOutstanding() bool {
	sent := m.sender.LastProbeSentAt()
	if sent.IsZero() {
		return false
	}
	resp := m.handler.LastProbeResponseAt()
	return resp.IsZero() || resp.Before(sent)
}

// ShouldSendProbe reports whether a keep-alive probe is due at now.
//
// A probe is due once ProbeDelay(keepAlive) has elapsed since the older of
// the last outbound packet and lastInbound, unless a probe is already
// outstanding.
func (m *Manager) ShouldSendProbe(now time.Time, keepAlive time.Duration, lastInbound time.Time) bool {
	if keepAlive <= 0 || m.probeOutstanding() {
		return false
	}
	base := m.sender.LastSentAt()
	if lastInbound.Before(base) {
		base = lastInbound
	}
	return !base.Add(ProbeDelay(keepAlive)).After(now)
}

// CheckKeepAlive runs one keep-alive check and returns the resulting status.
//
// If persistent is set and a probe is due, one is sent. If nothing has been
// received for InactivityTimeout(keepAlive) the connection is marked
// DISCONNECTED; the socket is left for Disconnect to release.
// A keepAlive <= 0 disables both checks.
func (m *Manager) CheckKeepAlive(persistent bool, keepAlive time.Duration) Status {
	if keepAlive <= 0 {
		return m.Status()
	}

	now := m.clock.Now()
	lastIn := m.handler.LastReceivedAt()

	if persistent && m.ShouldSendProbe(now, keepAlive, lastIn) {
		m.diag.Info("checking if server is still alive")
		if err := m.sender.SendProbeRequest(); err != nil {
			m.diag.Warn("failed to send probe request", "error", err)
		}
	}

	if !now.Before(lastIn.Add(InactivityTimeout(keepAlive))) {
		if m.setStatus(StatusDisconnected) {
			host, _ := m.Endpoint()
			m.diag.Info("no activity within timeout, disconnecting",
				"host", host, "silence", now.Sub(lastIn).Truncate(time.Millisecond))
		}
	}
	return m.Status()
}
