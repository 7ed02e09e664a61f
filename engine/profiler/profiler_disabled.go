//go:build !profile

package profiler

// No-op stubs when the "profile" build tag is not set.

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Dump() (string, error) { return "", nil }

func MemoryUsage() uint64 { return 0 }

func NumGoroutine() int { return 0 }
