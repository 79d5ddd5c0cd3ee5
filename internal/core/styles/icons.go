package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconNotifySuccess = "" // nf-fa-check_circle
	IconNotifyInfo    = "" // nf-fa-info_circle
	IconNotifyWarning = "" // nf-fa-warning
	IconNotifyError   = "" // nf-fa-times_circle
	IconClose         = "" // nf-fa-close
)
