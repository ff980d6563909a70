package discord

var (
	ToEmbed               = toEmbed
	BuildStatusMessage    = buildStatusMessage
	BuildQueueMessage     = buildQueueMessage
	BuildSimulateMessage  = buildSimulateMessage
	BuildSetupMessage     = buildSetupMessage
	BuildChangelogMessage = buildChangelogMessage
)
