// Package viz renders simulation results for the terminal: asciigraph
// channel plots, lipgloss styled statistics and alert lists, and the
// sparkline used by the live view.
package viz
