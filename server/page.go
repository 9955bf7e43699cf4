package server

const uploadPage = `<!DOCTYPE html>
<html>
<head>
    <title>TypeScript Documentation Generator</title>
    <style>
        .container { max-width: 800px; margin: 0 auto; padding: 20px; }
        .drop-zone { border: 2px dashed #ccc; padding: 20px; text-align: center; }
        .code-display { background: #f5f5f5; padding: 15px; margin: 10px 0; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <h1>TypeScript Documentation Generator</h1>
        <div class="drop-zone" id="drop-zone">
            <p>Drag and drop a TypeScript file here or click to upload</p>
            <input type="file" id="file-input" accept=".ts,.tsx" style="display: none;">
        </div>
        <div id="result" style="display: none;">
            <h2>Original Code:</h2>
            <pre class="code-display" id="original-code"></pre>
            <h2>Documented Code:</h2>
            <pre class="code-display" id="documented-code"></pre>
            <p>Total tokens used: <span id="token-count"></span></p>
        </div>
    </div>
    <script>
        const dropZone = document.getElementById('drop-zone');
        const fileInput = document.getElementById('file-input');

        dropZone.onclick = () => fileInput.click();

        dropZone.ondragover = (e) => {
            e.preventDefault();
            dropZone.style.borderColor = '#000';
        };

        dropZone.ondragleave = () => {
            dropZone.style.borderColor = '#ccc';
        };

        dropZone.ondrop = async (e) => {
            e.preventDefault();
            const file = e.dataTransfer.files[0];
            await processFile(file);
        };

        fileInput.onchange = async () => {
            const file = fileInput.files[0];
            await processFile(file);
        };

        async function processFile(file) {
            if (!file.name.endsWith('.ts') && !file.name.endsWith('.tsx')) {
                alert('Please upload a TypeScript file');
                return;
            }

            const formData = new FormData();
            formData.append('file', file);

            try {
                const response = await fetch('/document', {
                    method: 'POST',
                    body: formData
                });

                const result = await response.json();
                if (!response.ok) {
                    alert('Error processing file: ' + result.error);
                    return;
                }

                document.getElementById('result').style.display = 'block';
                document.getElementById('original-code').textContent = result.original_code;
                document.getElementById('documented-code').textContent = result.documented_code;
                document.getElementById('token-count').textContent = result.token_count;
            } catch (error) {
                alert('Error processing file: ' + error.message);
            }
        }
    </script>
</body>
</html>
`
