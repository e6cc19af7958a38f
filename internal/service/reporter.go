package service

import "github.com/sirupsen/logrus"

// FailureRecorder counts store failures per operation. *metrics.Metrics
// satisfies it.
type FailureRecorder interface {
	RecordStoreFailure(operation string)
}

// Reporter is how command and query services record outcomes: rejections at
// debug level, store failures at error level plus a metric.
type Reporter struct {
	log      *logrus.Entry
	recorder FailureRecorder
}

// NewReporter accepts a nil recorder.
func NewReporter(log *logrus.Entry, recorder FailureRecorder) *Reporter {
	return &Reporter{log: log, recorder: recorder}
}

// StoreFailure logs and counts err, then returns it wrapped as ErrStore.
func (r *Reporter) StoreFailure(op string, err error) error {
	r.log.WithError(err).WithField("operation", op).Error("store operation failed")
	if r.recorder != nil {
		r.recorder.RecordStoreFailure(op)
	}
	return StoreError(op, err)
}

// Rejected logs a business-rule rejection and returns err unchanged.
func (r *Reporter) Rejected(op string, err error) error {
	r.log.WithError(err).WithField("operation", op).Debug("request rejected")
	return err
}

func (r *Reporter) Log() *logrus.Entry {
	return r.log
}
