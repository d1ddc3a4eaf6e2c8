package repository

import "os"

// Table names are resolved from SUBMISSIONS_TABLE, INVOICES_TABLE and
// PAYMENT_ATTEMPTS_TABLE, falling back to the defaults each repository
// declares.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
