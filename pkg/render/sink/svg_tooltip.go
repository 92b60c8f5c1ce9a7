package sink

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
)

const (
	tooltipCSS = `
    .cell { cursor: crosshair; }
    .cell:hover { stroke: #222222; stroke-width: 1; }
    #tooltip { pointer-events: none; }
    .tooltip-text { font-family: sans-serif; font-size: 12px; fill: #222222; }`

	tooltipJS = `
    window.addEventListener('load', function () {
      var tip = document.getElementById('tooltip');
      var bg = document.getElementById('tooltip_bg');
      var text = document.getElementById('tooltip_text');
      if (!tip) return;
      var root = document.documentElement;
      function show(evt) {
        text.textContent = evt.target.getAttribute('data-value');
        bg.setAttribute('width', text.getComputedTextLength() + 12);
        var pt = root.createSVGPoint();
        pt.x = evt.clientX;
        pt.y = evt.clientY;
        var p = pt.matrixTransform(root.getScreenCTM().inverse());
        tip.setAttribute('transform', 'translate(' + (p.x + 10).toFixed(1) + ',' + (p.y + 10).toFixed(1) + ')');
        tip.setAttribute('visibility', 'visible');
      }
      function hide() {
        tip.setAttribute('visibility', 'hidden');
      }
      document.querySelectorAll('.cell').forEach(function (el) {
        el.addEventListener('mousemove', show);
        el.addEventListener('mouseleave', hide);
      });
    });`
)

func renderTooltipScript(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", tooltipCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", tooltipJS)
}

func renderTooltipOverlay(canvas *svg.SVG) {
	canvas.Group(`id="tooltip"`, `visibility="hidden"`, `filter="url(#tooltipShadow)"`)
	canvas.Roundrect(0, 0, 60, 22, 4, 4, `id="tooltip_bg"`, `fill="#ffffff"`, `stroke="#333333"`, `fill-opacity="0.9"`)
	canvas.Text(6, 15, "Tooltip", `id="tooltip_text"`, `class="tooltip-text"`)
	canvas.Gend()
}
