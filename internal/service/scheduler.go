package service

import "time"

// TimerScheduler schedules callbacks on the process clock. Callbacks run on
// their own goroutine; the caller is responsible for its own locking.
type TimerScheduler struct{}

func NewTimerScheduler() TimerScheduler {
	return TimerScheduler{}
}

func (TimerScheduler) Once(delay time.Duration, fn func()) ScheduledTask {
	return timerTask{timer: time.AfterFunc(delay, fn)}
}

type timerTask struct {
	timer *time.Timer
}

func (t timerTask) Cancel() bool {
	return t.timer.Stop()
}
