package photostore

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// extractGPS pulls the GPS position out of a photo's EXIF block. Photos
// without EXIF data (PNGs, stripped JPEGs) simply report ok=false.
func extractGPS(data []byte) (lat, lng float64, ok bool) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, false
	}

	lat, lng, err = x.LatLong()
	if err != nil {
		return 0, 0, false
	}

	return lat, lng, true
}
