package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/amdora/dlccontrol/internal/domain"
)

// TopicVerificationReminder is published on the event bus whenever the daily
// Secundária verification is still pending past the reminder hour.
const TopicVerificationReminder = "verification.reminder"

// ReminderEvent is the payload published on TopicVerificationReminder.
type ReminderEvent struct {
	At               time.Time
	LastVerification *domain.VerificationLog
}

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err := a.sched.AddFunc("@hourly", a.CheckVerificationReminder)
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()

	// The original workflow also checks right at startup, not only on the
	// hour boundary.
	go func() {
		time.Sleep(3 * time.Second)
		a.CheckVerificationReminder()
	}()
}

// CheckVerificationReminder evaluates the reminder condition and, when due,
// publishes a reminder event and logs a warning. It is re-evaluated hourly by
// the scheduler.
func (a *Application) CheckVerificationReminder() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	if !a.ReminderDue() {
		return
	}

	event := ReminderEvent{At: a.nowFn()}
	if last, ok := a.LastVerification(); ok {
		event.LastVerification = &last
	}
	a.bus.Publish(TopicVerificationReminder, event)
	zap.L().Warn("daily DLC Secundária verification still pending",
		zap.Time("at", event.At))
}
