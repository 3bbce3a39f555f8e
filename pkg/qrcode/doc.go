// Package qrcode generates QR code images as raw PNG bytes or base64
// data URIs. It is a thin wrapper around github.com/skip2/go-qrcode that
// adds input validation and sensible size defaults.
//
// The backend uses it to render payment confirmation URLs as QR codes so a
// user can open the hosted payment page on another device.
package qrcode
