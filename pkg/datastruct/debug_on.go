//go:build valuesdebug

package datastruct

const debug = true
