package web

import (
	"net"
	"time"

	"golang.org/x/sys/unix"
)

// rtt returns the smoothed round trip time the kernel holds for conn.
func rtt(conn net.Conn) (time.Duration, bool) {
	tcp, ok := conn.(*net.TCPConn)
	if !ok {
		return 0, false
	}
	raw, err := tcp.SyscallConn()
	if err != nil {
		return 0, false
	}

	var info *unix.TCPInfo
	ctrlErr := raw.Control(func(fd uintptr) {
		info, err = unix.GetsockoptTCPInfo(int(fd), unix.IPPROTO_TCP, unix.TCP_INFO)
	})
	if ctrlErr != nil || err != nil {
		return 0, false
	}

	return time.Duration(info.Rtt) * time.Microsecond, true
}
