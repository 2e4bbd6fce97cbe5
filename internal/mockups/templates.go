package mockups

import "html/template"

// fallbackTemplate is the builtin placeholder screen used when the backend
// returns no usable mockups.
var fallbackTemplate = template.Must(template.New("fallback").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Screen}}</title>
<style>
  body { margin: 0; font-family: -apple-system, "Segoe UI", sans-serif; background: #f3f4f6; }
  header { background: #1e3a8a; color: #fff; padding: 16px 32px; font-size: 20px; }
  main { max-width: 720px; margin: 48px auto; }
  .card { background: #fff; border-radius: 8px; padding: 32px; box-shadow: 0 1px 3px rgba(0,0,0,.12); }
  .card h1 { margin-top: 0; color: #111827; }
  .card p { color: #6b7280; }
  .placeholder { height: 120px; border: 2px dashed #d1d5db; border-radius: 6px; margin-top: 24px; }
</style>
</head>
<body>
<header>{{.Screen}}</header>
<main>
  <div class="card">
    <h1>{{.Screen}}</h1>
    <p>Static placeholder for the {{.Screen}} screen. Generated mockups will replace this.</p>
    <div class="placeholder"></div>
  </div>
</main>
</body>
</html>
`))

// indexTemplate is the mockup browser page: it shows one screen at a time in
// an iframe and cycles through the set.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Mockups</title>
<style>
  body { margin: 0; font-family: -apple-system, "Segoe UI", sans-serif; background: #111827; color: #e5e7eb; }
  nav { display: flex; align-items: center; gap: 12px; padding: 12px 20px; background: #1f2937; }
  nav button { background: #374151; color: #e5e7eb; border: 0; border-radius: 6px; padding: 6px 14px; cursor: pointer; }
  nav button:hover { background: #4b5563; }
  nav .title { font-weight: 600; }
  nav .desc { color: #9ca3af; font-size: 13px; }
  iframe { display: block; width: 100%; height: calc(100vh - 52px); border: 0; background: #fff; }
</style>
</head>
<body>
<nav>
  <button onclick="cycle(-1)">&#8592; Prev</button>
  <button onclick="cycle(1)">Next &#8594;</button>
  <span class="title" id="screen-title"></span>
  <span class="desc" id="screen-desc"></span>
</nav>
<iframe id="frame"></iframe>
<script>
  const screens = [
{{- range .Entries}}
    { name: {{.Name}}, desc: {{.Description}}, file: {{.File}} },
{{- end}}
  ];
  let idx = 0;
  function show() {
    const s = screens[idx];
    document.getElementById('frame').src = s.file;
    document.getElementById('screen-title').textContent = s.name + ' (' + (idx + 1) + '/' + screens.length + ')';
    document.getElementById('screen-desc').textContent = s.desc;
  }
  function cycle(step) {
    idx = (idx + step + screens.length) % screens.length;
    show();
  }
  if (screens.length > 0) show();
</script>
</body>
</html>
`))
