package seeder

import (
	"github.com/sirupsen/logrus"

	"uni-seeder/internal/client"
	"uni-seeder/internal/model"
)

// Reporter writes one line per attempted operation and tallies it into the
// run summary.
type Reporter struct {
	log     *logrus.Entry
	summary *Summary
}

func NewReporter(log *logrus.Logger, runID string, summary *Summary) *Reporter {
	return &Reporter{
		log:     log.WithField("run_id", runID),
		summary: summary,
	}
}

// Created reports a create-style operation (register, login, create).
// id may be empty when the endpoint returns nothing worth keeping.
func (r *Reporter) Created(entity, name string, id model.ID, result client.Result) {
	r.created(logrus.Fields{}, entity, name, id, result)
}

// CreatedRow reports a create dispatched from an input file row, so a
// failure can be traced back to its source line.
func (r *Reporter) CreatedRow(entity string, line int, name string, result client.Result) {
	r.created(logrus.Fields{"line": line}, entity, name, "", result)
}

func (r *Reporter) created(fields logrus.Fields, entity, name string, id model.ID, result client.Result) {
	r.summary.add(entity, result.OK())

	fields["entity"] = entity
	fields["name"] = name
	fields["status"] = result.Status
	if result.OK() {
		if !id.IsZero() {
			fields["id"] = id.String()
		}
		r.log.WithFields(fields).Info("created")
		return
	}

	fields["kind"] = string(result.Kind)
	fields["error"] = result.String()
	r.log.WithFields(fields).Warn("create failed")
}

// Listed reports a read-all request used to build a lookup table.
func (r *Reporter) Listed(entity string, count int, result client.Result) {
	entry := r.log.WithFields(logrus.Fields{
		"entity": entity,
		"status": result.Status,
	})
	if result.OK() {
		entry.WithField("count", count).Info("listed")
		return
	}
	entry.WithField("error", result.String()).Warn("list failed")
}

// Warn reports a condition that ends a phase early without failing the run.
func (r *Reporter) Warn(entity, message string) {
	r.log.WithField("entity", entity).Warn(message)
}

// Summarize writes the final per-entity counts.
func (r *Reporter) Summarize(workflow string) {
	for _, entity := range r.summary.Entities() {
		t := r.summary.Get(entity)
		r.log.WithFields(logrus.Fields{
			"workflow":  workflow,
			"entity":    entity,
			"attempted": t.Attempted,
			"created":   t.Created,
			"failed":    t.Failed,
		}).Info("summary")
	}
}
