// Package scheduler builds the cron runner shared by background jobs.
//
// Jobs are recovered on panic and skipped while a previous run of the same job
// is still going. Cron's own log lines are routed through zap.
package scheduler
