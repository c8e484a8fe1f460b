package main

import (
	"html/template"
	"io"

	"github.com/spetersoncode/studio/session"
)

type indexPageData struct {
	SessionID string
	State     session.ModeState
}

func renderIndexPage(w io.Writer, data indexPageData) error {
	return indexPageTmpl.Execute(w, data)
}

var indexPageTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Generative Media Studio</title>
    <style>
      :root {
        --bg: #0b1020;
        --panel: #111832;
        --text: #e9edf7;
        --muted: #a5b0cc;
        --border: rgba(255, 255, 255, 0.10);
        --accent: #7aa2ff;
        --bad: #fb7185;
        --sans: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif;
      }
      * { box-sizing: border-box; }
      body {
        margin: 0;
        font-family: var(--sans);
        color: var(--text);
        background: var(--bg);
        display: flex;
        justify-content: center;
      }
      .app { width: min(760px, 100%); padding: 24px 16px 64px; }
      h1 { font-size: 20px; margin: 0 0 16px; }
      .panel {
        background: var(--panel);
        border: 1px solid var(--border);
        border-radius: 12px;
        padding: 16px;
        margin-bottom: 16px;
      }
      .modes { display: flex; gap: 8px; margin-bottom: 12px; }
      .modes label {
        flex: 1;
        text-align: center;
        padding: 8px 0;
        border: 1px solid var(--border);
        border-radius: 8px;
        cursor: pointer;
        color: var(--muted);
      }
      .modes input { display: none; }
      .modes input:checked + span { color: var(--text); }
      .modes label:has(input:checked) { border-color: var(--accent); color: var(--text); }
      .row { display: flex; gap: 8px; margin-bottom: 12px; }
      .row > * { flex: 1; }
      select, textarea, button {
        width: 100%;
        font: inherit;
        color: inherit;
        background: rgba(255,255,255,0.04);
        border: 1px solid var(--border);
        border-radius: 8px;
        padding: 8px 10px;
      }
      textarea { min-height: 90px; resize: vertical; }
      button { cursor: pointer; }
      button:disabled { opacity: 0.5; cursor: default; }
      #submit { background: var(--accent); color: #0b1020; font-weight: 600; border: none; }
      .hidden { display: none !important; }
      #preview { max-width: 160px; border-radius: 8px; display: block; margin-top: 8px; }
      #loader { color: var(--muted); margin: 12px 0; }
      #response :first-child { margin-top: 0; }
      #response img, #response video { max-width: 100%; border-radius: 8px; }
      #response .error { color: var(--bad); }
      .actions { display: flex; gap: 8px; margin-top: 12px; }
      .actions > * { flex: 0 0 auto; width: auto; }
      a.button {
        display: inline-block;
        text-decoration: none;
        background: rgba(255,255,255,0.04);
        border: 1px solid var(--border);
        border-radius: 8px;
        padding: 8px 10px;
      }
    </style>
  </head>
  <body>
    <div class="app" data-session="{{.SessionID}}">
      <h1>Generative Media Studio</h1>

      <form id="form" class="panel">
        <div class="modes">
          <label><input type="radio" name="mode" value="chat" checked /><span>Chat</span></label>
          <label><input type="radio" name="mode" value="image" /><span>Image</span></label>
          <label><input type="radio" name="mode" value="video" /><span>Video</span></label>
        </div>

        <div class="row">
          <select id="model">
            {{range .State.Models}}<option value="{{.ID}}">{{.Label}}</option>{{end}}
          </select>
          <select id="aspect" class="hidden"></select>
        </div>

        <textarea id="prompt" placeholder="{{.State.Placeholder}}"></textarea>

        <div id="upload" class="row">
          <input type="file" id="image" accept="image/*" />
          <button type="button" id="remove" class="hidden">Remove image</button>
        </div>
        <img id="preview" class="hidden" alt="" />

        <button id="submit" type="submit">Generate</button>
      </form>

      <div id="loader" class="hidden">Generating…</div>

      <div class="panel">
        <div id="response"><p class="muted">Results appear here.</p></div>
        <div class="actions">
          <button type="button" id="copy" disabled>Copy</button>
          <a id="download" class="button hidden" download>Download</a>
        </div>
      </div>
    </div>

    <script>
      const sessionId = document.querySelector('.app').dataset.session;
      const form = document.getElementById('form');
      const modelSel = document.getElementById('model');
      const aspectSel = document.getElementById('aspect');
      const promptEl = document.getElementById('prompt');
      const uploadRow = document.getElementById('upload');
      const imageInput = document.getElementById('image');
      const removeBtn = document.getElementById('remove');
      const preview = document.getElementById('preview');
      const submitBtn = document.getElementById('submit');
      const loader = document.getElementById('loader');
      const response = document.getElementById('response');
      const copyBtn = document.getElementById('copy');
      const downloadLink = document.getElementById('download');

      const defaultLoaderLabel = 'Generating…';
      let rawText = '';

      function currentMode() {
        return form.querySelector('input[name="mode"]:checked').value;
      }

      function fillSelect(sel, items, value, label) {
        sel.innerHTML = '';
        for (const item of items) {
          const opt = document.createElement('option');
          opt.value = value(item);
          opt.textContent = label(item);
          sel.appendChild(opt);
        }
      }

      function applyModeState(state) {
        promptEl.value = '';
        promptEl.placeholder = state.placeholder;
        fillSelect(modelSel, state.models, m => m.id, m => m.label);
        aspectSel.classList.toggle('hidden', !state.aspectRatios);
        if (state.aspectRatios) {
          fillSelect(aspectSel, state.aspectRatios, r => r, r => 'Aspect ' + r);
        }
        uploadRow.classList.toggle('hidden', !state.acceptsUpload);
        clearUpload();
        clearResult();
      }

      function clearUpload() {
        imageInput.value = '';
        preview.classList.add('hidden');
        removeBtn.classList.add('hidden');
      }

      function clearResult() {
        response.innerHTML = '';
        rawText = '';
        copyBtn.disabled = true;
        downloadLink.classList.add('hidden');
      }

      function setLoader(msg) {
        loader.textContent = msg;
        loader.classList.remove('hidden');
      }

      function resetLoader() {
        loader.textContent = defaultLoaderLabel;
        loader.classList.add('hidden');
      }

      function showError(message) {
        clearResult();
        const p = document.createElement('p');
        p.className = 'error';
        p.textContent = message;
        response.appendChild(p);
      }

      function showResult(result) {
        clearResult();
        if (result.kind === 'chat') {
          response.innerHTML = result.html;
          rawText = result.rawText;
        } else {
          const el = document.createElement(result.kind === 'video' ? 'video' : 'img');
          el.src = result.mediaUrl;
          if (result.kind === 'video') { el.controls = true; }
          response.appendChild(el);
        }
        copyBtn.disabled = !result.canCopy;
        downloadLink.classList.toggle('hidden', !result.canDownload);
        if (result.canDownload) { downloadLink.href = result.downloadUrl; }
      }

      form.querySelectorAll('input[name="mode"]').forEach(radio => {
        radio.addEventListener('change', async () => {
          const res = await fetch('/api/mode', {
            method: 'POST',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({ sessionId, mode: currentMode() }),
          });
          if (res.ok) { applyModeState(await res.json()); }
        });
      });

      imageInput.addEventListener('change', () => {
        const file = imageInput.files[0];
        if (!file) { clearUpload(); return; }
        preview.src = URL.createObjectURL(file);
        preview.classList.remove('hidden');
        removeBtn.classList.remove('hidden');
      });

      removeBtn.addEventListener('click', clearUpload);

      copyBtn.addEventListener('click', () => {
        if (rawText) { navigator.clipboard.writeText(rawText); }
      });

      function handleEvent(event, payload) {
        if (event === 'status') { setLoader(payload.message); }
        if (event === 'result') { showResult(payload); }
        if (event === 'error') { showError(payload.message); }
      }

      async function readEvents(res) {
        const reader = res.body.getReader();
        const decoder = new TextDecoder();
        let buf = '';
        for (;;) {
          const { done, value } = await reader.read();
          if (done) { break; }
          buf += decoder.decode(value, { stream: true });
          let idx;
          while ((idx = buf.indexOf('\n\n')) >= 0) {
            const chunk = buf.slice(0, idx);
            buf = buf.slice(idx + 2);
            const ev = /^event: (.*)$/m.exec(chunk);
            const data = /^data: (.*)$/m.exec(chunk);
            if (ev && data) { handleEvent(ev[1], JSON.parse(data[1])); }
          }
        }
      }

      form.addEventListener('submit', async e => {
        e.preventDefault();
        const mode = currentMode();
        const hasImage = mode === 'chat' && imageInput.files.length > 0;
        if (!promptEl.value.trim() && !hasImage) {
          alert('Please enter a prompt.');
          return;
        }

        const body = new FormData();
        body.set('session', sessionId);
        body.set('mode', mode);
        body.set('model', modelSel.value);
        body.set('prompt', promptEl.value);
        if (mode === 'image') { body.set('aspectRatio', aspectSel.value); }
        if (mode !== 'image' && imageInput.files[0]) {
          body.set('image', imageInput.files[0]);
        }

        submitBtn.disabled = true;
        clearResult();
        setLoader(defaultLoaderLabel);
        try {
          const res = await fetch('/api/generate', { method: 'POST', body });
          if (!res.ok) {
            const payload = await res.json().catch(() => ({}));
            alert(payload.error || 'Request failed.');
            return;
          }
          await readEvents(res);
        } catch (err) {
          showError('Could not reach the server.');
        } finally {
          submitBtn.disabled = false;
          resetLoader();
        }
      });
    </script>
  </body>
</html>
`))
