// Package actionlog renders structured log events as the "::" prefixed
// workflow command lines a CI runner scans job output for. A Handler is a
// log/slog handler: records become debug, warning or error annotations with
// their attrs, the call site and any persistent metadata as parameters.
// Next to logging it covers the one shot commands of the same wire format,
// masking secrets, exporting environment variables and step outputs,
// extending PATH, and suspending command processing around untrusted output.
//
// Everything renders as strings and nothing escapes or rejects a record: a
// handler that throws away a log line is worse than one that renders it
// oddly.
package actionlog
