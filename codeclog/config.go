package codeclog

// TraceEnabled is the build-time switch for DEBUG-level tracing of
// encode/decode calls. No package in this module reads it: the codec
// packages do not log, and cmd/frametap sets its logger's level directly.
const TraceEnabled = false

// AssertLevel is the build-time level for extra invariant checks on
// decode paths. No package in this module reads it, so no value of it
// changes any behaviour.
const AssertLevel = 0
