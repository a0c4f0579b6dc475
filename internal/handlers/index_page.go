package handlers

// indexPage is the search form. It posts to the search endpoint and injects
// the returned markup into the results pane.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SAM.gov Contract Intelligence Agent</title>
<style>
body { font-family: -apple-system, Segoe UI, sans-serif; margin: 0; background: #f4f6f4; color: #222; }
header { background: #1B5E20; color: #fff; padding: 20px 30px; }
header p { margin: 5px 0 0; color: #c8e6c9; }
main { display: grid; grid-template-columns: 380px 1fr; gap: 24px; padding: 24px 30px; }
form { background: #fff; border-radius: 10px; padding: 20px; align-self: start; }
label { display: block; margin: 12px 0 4px; font-weight: 600; font-size: 14px; }
input, textarea { width: 100%; box-sizing: border-box; padding: 8px; border: 1px solid #bbb; border-radius: 5px; font: inherit; }
button { margin-top: 18px; width: 100%; padding: 12px; background: #2E7D32; color: #fff; border: 0; border-radius: 6px; font-size: 16px; cursor: pointer; }
button:disabled { background: #9e9e9e; }
#results { background: #fff; border-radius: 10px; padding: 20px; min-height: 300px; }
.hint { color: #666; font-size: 13px; margin: 4px 0 0; }
</style>
</head>
<body>
<header>
<h1>🏛️ SAM.gov Contract Intelligence Agent</h1>
<p>Search for government contract opportunities and compare AI-generated proposals from Google Gemini and GPT-4.</p>
</header>
<main>
<form id="search-form">
<h3>🔍 Search Contracts</h3>
<label for="keyword">Search Keyword</label>
<input id="keyword" name="keyword" placeholder="e.g., gardening, IT services, construction" value="gardening">
<h3>🏢 Company Profile (Optional)</h3>
<p class="hint">Provide your company details for personalized AI-generated proposals.</p>
<label for="company_name">Company Name</label>
<input id="company_name" name="company_name" placeholder="e.g., GreenScape Solutions LLC">
<label for="experience">Years of Experience / Background</label>
<textarea id="experience" name="experience" rows="2" placeholder="e.g., 15 years providing commercial landscaping services"></textarea>
<label for="capabilities">Key Capabilities &amp; Services</label>
<textarea id="capabilities" name="capabilities" rows="3" placeholder="e.g., Landscape design, irrigation systems, organic lawn care"></textarea>
<label for="certifications">Certifications &amp; Credentials</label>
<textarea id="certifications" name="certifications" rows="2" placeholder="e.g., ISA Certified Arborist, LEED AP"></textarea>
<label for="past_performance">Past Performance Highlights</label>
<textarea id="past_performance" name="past_performance" rows="3" placeholder="e.g., Maintained 50+ federal facilities, 98% CPARS rating"></textarea>
<label for="competitive_advantages">Competitive Advantages</label>
<textarea id="competitive_advantages" name="competitive_advantages" rows="3" placeholder="e.g., Veteran-owned, local presence, 24/7 emergency response"></textarea>
<button type="submit">🚀 Generate Proposals</button>
</form>
<div id="results"><p class="hint">Results will appear here. Live scraping can take up to a minute; the agent falls back to sample data when SAM.gov is unreachable.</p></div>
</main>
<script>
const form = document.getElementById('search-form');
const results = document.getElementById('results');
form.addEventListener('submit', async (event) => {
	event.preventDefault();
	const button = form.querySelector('button');
	button.disabled = true;
	results.innerHTML = "<p class='hint'>Searching SAM.gov and generating proposals…</p>";
	try {
		const resp = await fetch('/api/v1/search', { method: 'POST', body: new FormData(form) });
		results.innerHTML = await resp.text();
	} catch (err) {
		results.innerHTML = "<p style='color: red;'>Request failed: " + err + "</p>";
	} finally {
		button.disabled = false;
	}
});
</script>
</body>
</html>
`
