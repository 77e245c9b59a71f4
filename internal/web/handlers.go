package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/geodic/kociemba/internal/kociemba"
	"github.com/gorilla/mux"
)

// SolveResponse is the JSON body of GET /solve/{facelets}.
type SolveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
	TimeMS   int64  `json:"time_ms"`
}

// ScrambleResponse is the JSON body of GET /scramble.
type ScrambleResponse struct {
	Facelets string `json:"facelets"`
	Scramble string `json:"scramble"`
}

// ErrorResponse is the JSON body of any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	facelets := mux.Vars(r)["facelets"]

	result, err := kociemba.Solve(facelets, kociemba.DefaultMaxMoves, kociemba.DefaultTimeout)
	if err != nil {
		status := http.StatusInternalServerError
		resp := ErrorResponse{Error: err.Error()}
		var kerr *kociemba.Error
		if errors.As(err, &kerr) {
			resp.Kind = kerr.Kind.String()
			switch kerr.Kind {
			case kociemba.InvalidFaceletString, kociemba.InvalidCube:
				status = http.StatusBadRequest
			}
		}
		writeJSON(w, status, resp)
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		Solution: result.Solution(),
		Moves:    result.MoveCount,
		TimeMS:   result.SolveTime.Milliseconds(),
	})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	sc := kociemba.Scramble()
	writeJSON(w, http.StatusOK, ScrambleResponse{
		Facelets: sc.Facelets,
		Scramble: strings.Join(sc.Moves, " "),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        input { font-family: monospace; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
        .error { color: red; }
        code { word-break: break-all; }
    </style>
</head>
<body>
    <h1>&#129513; Cube Solver</h1>
    <div class="container">
        <h2>Solve Your Cube</h2>
        <div>
            <label>Facelets (54 characters, faces U R F D L B):</label><br>
            <input type="text" id="facelets" maxlength="54" size="60"
                   placeholder="UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB">
        </div>
        <button id="solveBtn">Solve</button>
        <button id="scrambleBtn">Random scramble</button>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        const show = (html) => {
            const el = document.getElementById('result');
            el.innerHTML = html;
            el.style.display = 'block';
        };

        document.getElementById('solveBtn').addEventListener('click', async () => {
            const facelets = document.getElementById('facelets').value.trim();
            try {
                const response = await fetch('/solve/' + encodeURIComponent(facelets));
                const result = await response.json();
                if (!response.ok) {
                    show('<p class="error">' + result.error + '</p>');
                    return;
                }
                show('<h3>Solution</h3><p><code>' + (result.solution || '(already solved)') + '</code></p>' +
                     '<p><strong>Moves:</strong> ' + result.moves + '</p>' +
                     '<p><strong>Time:</strong> ' + result.time_ms + ' ms</p>');
            } catch (error) {
                show('<p class="error">Error: ' + error.message + '</p>');
            }
        });

        document.getElementById('scrambleBtn').addEventListener('click', async () => {
            try {
                const response = await fetch('/scramble');
                const result = await response.json();
                document.getElementById('facelets').value = result.facelets;
                show('<h3>Scramble</h3><p><code>' + result.scramble + '</code></p>' +
                     '<p><strong>Facelets:</strong> <code>' + result.facelets + '</code></p>');
            } catch (error) {
                show('<p class="error">Error: ' + error.message + '</p>');
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}
