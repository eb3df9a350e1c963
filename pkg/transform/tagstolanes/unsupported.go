package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// accessKeys are the transport-mode access-restriction keys that
// checkUnsupported reports. Of these, only access, bus and psv are read
// elsewhere (newRoadBuilder uses them to detect a bus-only way).
// https://wiki.openstreetmap.org/wiki/Key:access#Transport_mode_restrictions
var accessKeys = []tags.Key{
	"access", "dog", "ski", "inline_skates", "horse", "vehicle", "bicycle",
	"electric_bicycle", "carriage", "hand_cart", "quadracycle", "trailer",
	"caravan", "motor_vehicle", "motorcycle", "moped", "mofa", "motorcar",
	"motorhome", "tourist_bus", "coach", "goods", "hgv", "hgv_articulated",
	"bdouble", "agricultural", "golf_cart", "atv", "snowmobile", "psv", "bus",
	"taxi", "minibus", "share_taxi", "hov", "car_sharing", "emergency",
	"hazmat", "disabled", "roadtrain", "hgv_caravan", "lhv", "tank",
}

// checkUnsupported is a catch-all final sweep for known but unhandled
// transport-mode access tags, so they are reported instead of silently
// ignored.
func checkUnsupported(t *tags.Tags, warnings *diag.Warnings) {
	present := t.Subset(accessKeys...)
	if !present.IsEmpty() {
		warnings.Push(diag.Unimplemented("access", present))
	}
}
