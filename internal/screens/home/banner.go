package home

// renderBanner returns the ASCII wordmark shown on the home screen.
func renderBanner() string {
	return `
 ____   ___   ____ ____   ___ _____
|  _ \ / _ \ / ___|  _ \ / _ \_   _|
| | | | | | | |   | | | | | | || |
| |_| | |_| | |___| |_| | |_| || |
|____/ \___/ \____|____/ \___/ |_|
`
}
