// Package password classifies password strength into three levels and
// generates passwords for a requested level.
//
// Classification and generation are independent. A generated Strong
// password is drawn uniformly from the Strong charset and is not forced to
// contain every character class, so it may classify lower.
package password
