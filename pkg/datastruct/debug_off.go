//go:build !valuesdebug

package datastruct

const debug = false
