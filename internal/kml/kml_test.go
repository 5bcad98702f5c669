package kml

import (
	"testing"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/testutil"
)

const document = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <name>Light pollution</name>
    <Folder>
      <GroundOverlay>
        <name>VIIRS_2022_LightPollut_r0c0.jpg</name>
        <drawOrder>1</drawOrder>
        <Icon><href>files/VIIRS_2022_LightPollut_r0c0.jpg</href></Icon>
        <LatLonBox>
          <north> 52.4 </north>
          <south>52.3</south>
          <east>5.0</east>
          <west>4.8</west>
          <rotation>0</rotation>
        </LatLonBox>
      </GroundOverlay>
    </Folder>
    <GroundOverlay>
      <drawOrder>2</drawOrder>
      <LatLonBox>
        <north>52.4</north>
      </LatLonBox>
    </GroundOverlay>
  </Document>
</kml>`

func TestParse(t *testing.T) {
	// Act
	overlays, err := Parse([]byte(document))

	// Assert
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, 2, len(overlays))

	first := overlays[0]
	name, ok := first.Field("name")
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, "VIIRS_2022_LightPollut_r0c0.jpg", name)

	north, ok := first.BoxField("north")
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, "52.4", north)

	testutil.AssertEqual(t, "GroundOverlay #1 (name 'VIIRS_2022_LightPollut_r0c0.jpg')", first.String())
}

func TestParse_missingFields(t *testing.T) {
	overlays, err := Parse([]byte(document))
	testutil.AssertNil(t, err)

	second := overlays[1]
	_, hasName := second.Field("name")
	_, hasSouth := second.BoxField("south")

	testutil.AssertFalse(t, hasName)
	testutil.AssertTrue(t, second.HasBox())
	testutil.AssertFalse(t, hasSouth)
	testutil.AssertEqual(t, "GroundOverlay #2", second.String())
}

func TestParse_overlaysOutsideDocumentIgnored(t *testing.T) {
	overlays, err := Parse([]byte(`<kml><GroundOverlay><name>x</name></GroundOverlay></kml>`))

	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, 0, len(overlays))
}

func TestParse_invalidXml(t *testing.T) {
	_, err := Parse([]byte(`<kml><Document>`))

	testutil.AssertNotNil(t, err)
}
