// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for backend requests.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"portal/cli/internal/backend"
	"portal/cli/internal/logging"
)

// Category groups request failures by what the user can do about them.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryTimeout
	CategoryDNS
	CategoryConnectionRefused
	CategoryTLS
	CategoryUnauthorized
	CategoryRejected
	CategoryServer
)

// Classify inspects err and returns its Category.
func Classify(err error) Category {
	var se *backend.StatusError
	switch {
	case errors.As(err, &se) && se.Code == 401:
		return CategoryUnauthorized
	case errors.As(err, &se) && se.Code >= 500:
		return CategoryServer
	case errors.As(err, &se):
		return CategoryRejected
	case isTimeoutError(err):
		return CategoryTimeout
	case isDNSError(err):
		return CategoryDNS
	case isConnectionRefusedError(err):
		return CategoryConnectionRefused
	case isSSLError(err):
		return CategoryTLS
	default:
		return CategoryGeneric
	}
}

// FormatNetworkError renders err as a user-friendly message and returns it
// wrapped for the command's exit status. action describes what was being
// attempted, e.g. "logging in".
func FormatNetworkError(err error, action string) error {
	if err == nil {
		return nil
	}

	switch Classify(err) {
	case CategoryUnauthorized:
		pterm.Error.Printf("The server rejected the credentials while %s\n", action)
		pterm.Println("Check your email and password and try again.")
	case CategoryRejected:
		showRejectedError(action, err)
	case CategoryServer:
		showServerError(action)
	case CategoryTimeout:
		showTimeoutError(action)
	case CategoryDNS:
		showDNSError(action)
	case CategoryConnectionRefused:
		showConnectionRefusedError(action)
	case CategoryTLS:
		showSSLError(action)
	default:
		showGenericError(action, err.Error())
	}

	return fmt.Errorf("%s: %w", action, err)
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

func showRejectedError(action string, err error) {
	pterm.Error.Printf("The server refused the request while %s\n", action)
	var se *backend.StatusError
	if errors.As(err, &se) && se.Body != "" {
		pterm.Println(logging.Mask(truncate(se.Body, 200)))
	}
	pterm.Println()
}

func showTimeoutError(action string) {
	pterm.Printf("⏱️  Connection timeout while %s\n", action)
	pterm.Println()
	pterm.Println("The server took too long to respond. This could mean:")
	pterm.Println("  • Slow internet connection")
	pterm.Println("  • Server is under heavy load")
	pterm.Println("  • A proxy or firewall is holding the connection")
	pterm.Println()
	pterm.Println("Try again, or raise PORTAL_TIMEOUT.")
	pterm.Println()
}

func showDNSError(action string) {
	pterm.Printf("🌐 Cannot resolve server address while %s\n", action)
	pterm.Println()
	pterm.Println("Please check:")
	pterm.Println("  • Your internet connection is working")
	pterm.Println("  • The configured API URL (--api-url or PORTAL_API_URL)")
	pterm.Println()
}

func showConnectionRefusedError(action string) {
	pterm.Printf("🚫 Connection refused while %s\n", action)
	pterm.Println()
	pterm.Println("The server is not accepting connections. This could mean:")
	pterm.Println("  • The backend is not running")
	pterm.Println("  • Wrong server address or port")
	pterm.Println()
}

func showSSLError(action string) {
	pterm.Printf("🔒 Secure connection failed while %s\n", action)
	pterm.Println()
	pterm.Println("Cannot establish a secure HTTPS connection. This could mean:")
	pterm.Println("  • SSL/TLS certificate issue")
	pterm.Println("  • Network proxy interfering with HTTPS")
	pterm.Println("  • System clock is incorrect")
	pterm.Println()
}

func showServerError(action string) {
	pterm.Printf("⚠️  Server error while %s\n", action)
	pterm.Println()
	pterm.Println("The backend encountered an internal error. This is not a problem with your setup.")
	pterm.Println("Please try again in a few minutes.")
	pterm.Println()
}

func showGenericError(action string, errDetails string) {
	pterm.Printf("❌ Cannot reach the backend while %s\n", action)
	pterm.Println()
	if errDetails != "" {
		pterm.Debug.Printf("Technical details: %s\n", logging.Mask(truncate(errDetails, 100)))
		pterm.Println()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
