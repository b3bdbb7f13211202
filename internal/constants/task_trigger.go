package constants

type TaskTrigger string

const (
	TriggerStart    TaskTrigger = "Start"
	TriggerComplete TaskTrigger = "Complete"
)
