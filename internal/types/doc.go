// Package types holds the closed tag enumeration shared by the variant and
// errors packages, together with the explicit mapping to and from the
// foreign runtime's numeric type codes.
package types
