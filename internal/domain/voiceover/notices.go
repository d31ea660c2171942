package voiceover

import "dog-life/internal/ports/notify"

func destructive(title, desc string) notify.Notice {
	return notify.Notice{Title: title, Description: desc, Variant: notify.VariantDestructive}
}

var (
	noticeInvalidSource = destructive("Audio Error", "Invalid audio source. Please try again.")
	noticeLoadFailed    = destructive("Audio Error", "There was a problem loading the audio. Please try again.")
	noticeNotReady      = notify.Notice{
		Title:       "Audio Not Ready",
		Description: "Please wait for the audio to load before playing.",
		Variant:     notify.VariantDefault,
	}
	noticePlaybackRejected = destructive("Playback Error", "There was a problem playing the audio. This may be due to browser autoplay restrictions.")
	noticeVoiceGenerated   = notify.Notice{
		Title:       "Voice Generated",
		Description: "Your dog's voice has been successfully generated!",
		Variant:     notify.VariantDefault,
	}
	noticeVoiceFailed = destructive("Voice Generation Failed", "Using sample audio instead. Please try again later.")
	noticeGeneric     = destructive("Error", "Something went wrong. Please try again.")
)
