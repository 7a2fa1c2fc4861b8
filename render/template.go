package render

import "html/template"

// mapTemplate Leaflet 页面, 与 folium 生成的地图一致: 蓝色标记、灰/红连线、中点距离标签
var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body { height: 100%; margin: 0; font-family: sans-serif; }
header { padding: 8px 12px; background: #f5f5f5; border-bottom: 1px solid #ddd; }
#map { height: calc(100% - 40px); }
.dist-label { background: transparent; border: none; white-space: nowrap; }
</style>
</head>
<body>
<header><strong>{{.Title}}</strong> &middot; {{.Summary}}</header>
<div id="map"></div>
<script>
var map = L.map("map").setView({{.Center}}, {{.Zoom}});
L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
  maxZoom: 19,
  attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);

var markers = {{.Markers}};
markers.forEach(function (m) {
  var popup = document.createElement("span");
  popup.textContent = m.id;
  L.marker([m.lat, m.lng]).bindPopup(popup).addTo(map);
});

var lines = {{.Lines}};
lines.forEach(function (l) {
  L.polyline(l.points, { color: l.color, weight: l.weight, opacity: 0.8 }).addTo(map);
  var label = document.createElement("div");
  label.style.fontSize = "12px";
  label.style.color = "black";
  label.textContent = l.text;
  L.marker(l.label, { icon: L.divIcon({ className: "dist-label", html: label }) }).addTo(map);
});
</script>
</body>
</html>
`))
