package server

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// handleIndex serves the single-page demo frontend.
func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(200, "index", gin.H{
		"AppName": s.cfg.AppName,
		"Version": s.cfg.Version,
		"Port":    s.cfg.Port,
	})
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <title>{{.AppName}} — Demo (port {{.Port}})</title>
  <meta name="viewport" content="width=device-width,initial-scale=1"/>
  <style>
    body { font-family: Inter, Arial, sans-serif; padding: 18px; max-width: 900px; margin: auto; }
    header { display:flex; gap:12px; align-items:center; margin-bottom:18px;}
    input, button, textarea { padding:8px; font-size:14px; }
    .item { border:1px solid #ddd; padding:10px; border-radius:8px; margin-bottom:8px;}
    .row { display:flex; gap:8px; align-items:center; }
  </style>
</head>
<body>
  <header>
    <h1>{{.AppName}}</h1>
    <small>version: <span id="version">{{.Version}}</span></small>
  </header>

  <section>
    <h2>Auth</h2>
    <div class="row">
      <input id="username" placeholder="username (demo)" value="demo_user"/>
      <input id="password" placeholder="password (demo)" value="demo_pass"/>
      <button onclick="login()">Login (get JWT)</button>
      <button onclick="logout()">Logout</button>
    </div>
    <div>Token: <code id="tokenPreview" style="word-break:break-all"></code></div>
  </section>

  <section>
    <h2>Items (CRUD)</h2>
    <div>
      <input id="itemName" placeholder="name"/>
      <input id="itemDesc" placeholder="description"/>
      <button onclick="createItem()">Create</button>
    </div>
    <div id="items"></div>
  </section>

  <section>
    <h2>App Info</h2>
    <button onclick="loadInfo()">Reload Info</button>
    <pre id="info"></pre>
  </section>

<script>
const apiRoot = "/api";

function setToken(t) {
  localStorage.setItem("jwt_token", t||"");
  document.getElementById("tokenPreview").innerText = t || "";
}
function getToken() {
  return localStorage.getItem("jwt_token") || "";
}

async function login(){
  const u = document.getElementById("username").value;
  const p = document.getElementById("password").value;
  const res = await fetch(apiRoot + "/auth/login", {
    method: "POST", headers: {'Content-Type':'application/json'}, body: JSON.stringify({username:u,password:p})
  });
  const j = await res.json();
  if(res.ok && j.token){ setToken(j.token); alert("Logged in"); loadItems(); }
  else alert("Login failed: " + JSON.stringify(j));
}

function logout(){ setToken(""); alert("Logged out"); loadItems(); }

async function loadItems(){
  const r = await fetch(apiRoot + "/items");
  const list = await r.json();
  const el = document.getElementById("items");
  el.innerHTML = "";
  list.forEach(it=>{
    const div = document.createElement("div");
    div.className = "item";
    div.innerHTML = ` + "`" + `
      <b>${it.name}</b> <small>${it.id}</small>
      <p>${it.description}</p>
      <div class="row">
        <button onclick='editItem("${it.id}")'>Edit</button>
        <button onclick='deleteItem("${it.id}")'>Delete</button>
        <button onclick='callSecure()'>Call Secure</button>
      </div>
    ` + "`" + `;
    el.appendChild(div);
  });
}

async function createItem(){
  const name = document.getElementById("itemName").value;
  const desc = document.getElementById("itemDesc").value;
  const r = await fetch(apiRoot + "/items", {
    method: "POST", headers: {'Content-Type':'application/json'}, body: JSON.stringify({name,description:desc})
  });
  if(r.ok) { loadItems(); document.getElementById("itemName").value=""; document.getElementById("itemDesc").value=""; }
  else alert("Create failed: " + await r.text());
}

async function editItem(id){
  const newName = prompt("New name?");
  if(!newName) return;
  const r = await fetch(apiRoot + "/items/" + id, {
    method: "PUT", headers: {'Content-Type':'application/json'}, body: JSON.stringify({name:newName})
  });
  if(r.ok) loadItems(); else alert("Edit failed");
}

async function deleteItem(id){
  if(!confirm("Delete?")) return;
  const r = await fetch(apiRoot + "/items/" + id, { method: "DELETE" });
  if(r.ok) loadItems();
  else alert("Delete failed");
}

async function loadInfo(){
  const p = await fetch(apiRoot + "/version"); const v = await p.json();
  const h = await fetch(apiRoot + "/health"); const healthy = await h.json();
  const m = await fetch(apiRoot + "/metrics"); const metrics = await m.json();
  document.getElementById("info").innerText = JSON.stringify({version:v,health:healthy,metrics:metrics}, null, 2);
  document.getElementById("version").innerText = v.version;
}

async function callSecure(){
  const token = getToken();
  if(!token){ alert("You must login first"); return; }
  const r = await fetch(apiRoot + "/secure", { headers: {'Authorization':'Bearer ' + token} });
  alert(await r.text());
}

window.onload = function(){ loadItems(); loadInfo(); setToken(getToken()); }
</script>
</body>
</html>
`
