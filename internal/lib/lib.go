// Package lib groups modules that do not fit strictly into other layers.
//
// It currently holds background job processing (Redis/Asynq) in lib/job.
package lib
