package demoserver

// The two login pages mirror the two trigger styles a workshop
// attendee writes: a submit handler on the form with a fixed endpoint,
// and a click handler on a button that reads the endpoint from a
// URL-bearing form field.

const loginSubmitPage = `<!DOCTYPE html>
<html>
<head>
    <title>Workshop Login (submit event)</title>
    <style>
        body { font-family: system-ui, -apple-system, sans-serif; max-width: 480px; margin: 60px auto; }
        label { display: block; margin-top: 12px; }
        input { width: 100%; padding: 8px; margin-top: 4px; }
        button { margin-top: 16px; padding: 10px 20px; background: #007bff; color: white; border: none; border-radius: 4px; cursor: pointer; }
    </style>
</head>
<body>
    <h1>Log in</h1>
    <p>Open the console: the response (or the error) is logged there.</p>
    <form id="login-form" action="/api/login" method="post">
        <label for="username">Username
            <input type="text" id="username" name="username">
        </label>
        <label for="password">Password
            <input type="password" id="password" name="password">
        </label>
        <button type="submit">Log in</button>
    </form>
    <script>
        const form = document.getElementById("login-form");
        form.addEventListener("submit", async (event) => {
            event.preventDefault();
            const username = document.getElementById("username").value;
            const password = document.getElementById("password").value;
            const options = {
                method: "POST",
                body: JSON.stringify({ username, password }),
                headers: { "Content-Type": "application/json" },
            };
            try {
                const response = await fetch("/api/login", options);
                if (!response.ok) {
                    throw new Error(response.status);
                }
                const data = await response.json();
                console.log(data);
            } catch (err) {
                console.error(err);
            }
        });
    </script>
</body>
</html>`

const loginClickPage = `<!DOCTYPE html>
<html>
<head>
    <title>Workshop Login (click event)</title>
    <style>
        body { font-family: system-ui, -apple-system, sans-serif; max-width: 480px; margin: 60px auto; }
        label { display: block; margin-top: 12px; }
        input { width: 100%; padding: 8px; margin-top: 4px; }
        button { margin-top: 16px; padding: 10px 20px; background: #28a745; color: white; border: none; border-radius: 4px; cursor: pointer; }
    </style>
</head>
<body>
    <h1>Log in</h1>
    <p>This variant reads the endpoint from the form's url field.</p>
    <form id="login-form">
        <input type="hidden" name="url" value="/api/login">
        <label for="username">Username
            <input type="text" id="username" name="username">
        </label>
        <label for="password">Password
            <input type="password" id="password" name="password">
        </label>
        <button id="submit-btn" type="button">Log in</button>
    </form>
    <script>
        document.getElementById("submit-btn").addEventListener("click", () => {
            const form = document.getElementById("login-form");
            const url = form.elements.url.value;
            const payload = {
                username: document.getElementById("username").value,
                password: document.getElementById("password").value,
            };
            fetch(url, {
                method: "POST",
                body: JSON.stringify(payload),
                headers: { "Content-Type": "application/json" },
            })
                .then((response) => {
                    if (!response.ok) {
                        throw new Error(response.status);
                    }
                    return response.json();
                })
                .then((data) => console.log(data))
                .catch((err) => console.error("Login failed:", err));
        });
    </script>
</body>
</html>`
