package w4

// DiskRead reads up to DiskSize bytes of persistent storage into dst and
// returns the number of bytes read.
func DiskRead(dst []byte) int {
	dst = clampDisk(dst)
	if len(dst) == 0 {
		return 0
	}
	return int(hostDiskR(dst))
}

// DiskWrite replaces persistent storage with up to DiskSize bytes of src
// and returns the number of bytes written.
func DiskWrite(src []byte) int {
	src = clampDisk(src)
	if len(src) == 0 {
		return 0
	}
	return int(hostDiskW(src))
}

func clampDisk(b []byte) []byte {
	if len(b) > DiskSize {
		return b[:DiskSize]
	}
	return b
}
