// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

// OTPLength is the number of digits in a verification code.
const OTPLength = 6

var otpRange = big.NewInt(900000)

// GenerateOTP returns a random 6-digit verification code in [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpRange)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
