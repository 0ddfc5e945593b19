package handlers

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIP извлекает IP адрес клиента из запроса.
// Порядок разрешения: peer адрес соединения, затем первый элемент
// X-Forwarded-For, затем адрес локального интерфейса. Порядок менять
// нельзя: от него зависят и ban matching, и ключи rate limiter'а.
func ClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return normalizeIP(host)
	}
	if r.RemoteAddr != "" {
		return normalizeIP(r.RemoteAddr)
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := xff
		if idx := strings.IndexByte(xff, ','); idx >= 0 {
			first = xff[:idx]
		}
		if first = strings.TrimSpace(first); first != "" {
			return normalizeIP(first)
		}
	}

	return localAddr()
}

// normalizeIP приводит адрес к канонической форме: IPv4-mapped-IPv6
// разворачивается в IPv4, чтобы "::ffff:203.0.113.7" матчился
// с баном, записанным как "203.0.113.7".
func normalizeIP(addr string) string {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return addr
	}
	return ip.Unmap().String()
}

// localAddr возвращает адрес первого не-loopback интерфейса
func localAddr() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if v4 := ipNet.IP.To4(); v4 != nil {
			return v4.String()
		}
	}

	return "127.0.0.1"
}
