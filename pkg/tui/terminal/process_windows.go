// ABOUTME: Windows stub for the Process resize listener
// ABOUTME: Windows has no SIGWINCH; hosts poll Size if they need resizes

//go:build windows

package terminal

func (p *Process) startResizeListener() {}
